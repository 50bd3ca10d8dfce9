package console

const (
	promptDeliveryFile   = "Name of delivery file: "
	promptConfirm        = "Confirm this delivery, [Y]es, [N]o: "
	promptExitOrReload   = "Would you like to Exit [E] or input new filename [N]?\n\n\n"
	promptMainMenu       = "Choose what to do: \nSearch [S]\nEnter route [R]\nExit [E]\n"
	promptSearchMenu     = "Search by:\nOrder_id [ID]\nAddress [A]\n"
	promptOrderID        = "\nInput Order ID: "
	promptAddress        = "\nInput Address (Format address as '0, ADDRESS AVE, A1A 1A1'): "
	promptRouteName      = "\n\nEnter Route Name: "
	promptRouteOrders    = "\n\nEnter route (format by order id as such: Order Id 1, Order Id 2...): "
	promptTerminate      = "Terminate Program, [Y]es, [N]o: "
	msgFileNotFound      = "Can not find file name\n\n"
	msgBadFormat         = "Please check the format of the file. Check if END is placed correctly in the file.\n"
	msgDeliveryCreated   = "Delivery has been created\n"
	msgNewFilename       = "Please input new delivery filename.\n"
	msgInvalidConfirm    = "Not a valid action\n"
	msgInvalidMenu       = "Not a valid action please try again\n"
	msgInvalidSearch     = "\nNot a valid action, search by [ID] or [A]\n"
	msgOrderNotFound     = "\nCan not find order, please enter correct order id\n"
	msgInvalidAddress    = "\nInvalid address format, please try again\n"
	msgInvalidTerminate  = "Not a valid action.\n"
	msgTerminated        = "Program has been terminated\n"
	answerYes            = "y"
	answerNo             = "n"
	answerExit           = "e"
	answerSearch         = "s"
	answerRoute          = "r"
	answerSearchByID     = "id"
	answerSearchByAddr   = "a"
	clearScreenLineCount = 50
)
