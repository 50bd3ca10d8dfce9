// Package manifestfile reads delivery manifests: line-oriented text files in
// which the literal line END delimits one block per order.
//
//	END
//	Order1
//	Jane Doe
//	(555)-123-4567
//	[12, main st, a1a1a1]
//	Leave at back door
//	END
//
// The first END opens the first block and every later END closes the open
// block and opens the next, so a well-formed manifest starts and ends with
// END. Blocks with no lines are skipped.
package manifestfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"routebook/internal/core/domain/model/delivery"
	"routebook/internal/core/domain/model/kernel"
	"routebook/internal/core/domain/model/order"
	"routebook/internal/pkg/errs"
)

// BoundaryMarker is the line that delimits blocks.
const BoundaryMarker = "END"

const (
	addressPrefix = "["
	addressSuffix = "]"

	maxLineSize = 1024 * 1024
)

// Attribute positions within a block.
const (
	attrOrderID = iota
	attrName
	attrPhone
	attrAddress
	attrNote

	minAttributes = attrAddress + 1
	maxAttributes = attrNote + 1
)

var (
	ErrMissingClosingBoundary     = errors.New("manifest does not end with " + BoundaryMarker)
	ErrContentBeforeFirstBoundary = errors.New("manifest content before the opening " + BoundaryMarker)
	ErrAddressIsMisplaced         = errors.New("address line must be the fourth line of a block")
)

type attribute struct {
	line      int
	text      string
	address   kernel.Address
	isAddress bool
}

type blockParser struct {
	source string
	opened bool
	block  []attribute
	orders []*order.Order
	seen   map[string]int
}

// Parse reads a manifest from r in a single forward pass and builds a
// Delivery. source names the manifest in errors and becomes the delivery's
// Source.
//
// Grammar errors, lines longer than 1 MiB included, are returned as
// *errs.FormatIsInvalidError carrying the line number. Read failures are
// returned as *errs.FileIsInaccessibleError.
func Parse(r io.Reader, source string) (*delivery.Delivery, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	p := &blockParser{
		source: source,
		seen:   make(map[string]int),
	}

	lineNo := 0
	last := ""
	for scanner.Scan() {
		lineNo++
		last = strings.TrimSpace(scanner.Text())
		if err := p.feed(last, lineNo); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, errs.NewFormatIsInvalidErrorWithCause(source, lineNo+1, err)
		}
		return nil, errs.NewFileIsInaccessibleErrorWithCause(source, err)
	}

	if last != BoundaryMarker {
		return nil, errs.NewFormatIsInvalidErrorWithCause(source, lineNo, ErrMissingClosingBoundary)
	}

	d, err := delivery.NewDelivery(source, p.orders...)
	if err != nil {
		return nil, errs.NewFormatIsInvalidErrorWithCause(source, 0, err)
	}
	return d, nil
}

func (p *blockParser) feed(line string, lineNo int) error {
	if line == BoundaryMarker {
		if !p.opened {
			p.opened = true
			return nil
		}
		return p.closeBlock()
	}

	if !p.opened {
		if line == "" {
			return nil
		}
		return errs.NewFormatIsInvalidErrorWithCause(p.source, lineNo, ErrContentBeforeFirstBoundary)
	}

	if strings.HasPrefix(line, addressPrefix) {
		inner := strings.TrimSuffix(strings.TrimPrefix(line, addressPrefix), addressSuffix)
		addr, err := kernel.ParseAddress(inner)
		if err != nil {
			return errs.NewFormatIsInvalidErrorWithCause(p.source, lineNo, err)
		}
		p.block = append(p.block, attribute{line: lineNo, address: addr, isAddress: true})
		return nil
	}

	p.block = append(p.block, attribute{line: lineNo, text: line})
	return nil
}

func (p *blockParser) closeBlock() error {
	block := p.block
	p.block = nil

	if len(block) == 0 {
		return nil
	}

	o, err := p.buildOrder(block)
	if err != nil {
		return err
	}
	p.seen[o.ID()] = block[attrOrderID].line
	p.orders = append(p.orders, o)
	return nil
}

func (p *blockParser) buildOrder(block []attribute) (*order.Order, error) {
	start := block[attrOrderID].line

	if len(block) < minAttributes || len(block) > maxAttributes {
		return nil, errs.NewFormatIsInvalidErrorWithCause(p.source, start,
			errs.NewValueIsOutOfRangeError("block attributes", len(block), minAttributes, maxAttributes))
	}

	for i, attr := range block {
		if attr.isAddress != (i == attrAddress) {
			return nil, errs.NewFormatIsInvalidErrorWithCause(p.source, attr.line, ErrAddressIsMisplaced)
		}
	}

	id := block[attrOrderID].text
	if first, dup := p.seen[id]; dup {
		return nil, errs.NewFormatIsInvalidErrorWithCause(p.source, start,
			fmt.Errorf("%w: %s (first seen on line %d)", delivery.ErrDuplicateOrderID, id, first))
	}

	var opts []order.Option
	if len(block) == maxAttributes {
		opts = append(opts, order.WithNote(block[attrNote].text))
	}

	o, err := order.NewOrder(
		id,
		block[attrName].text,
		block[attrPhone].text,
		block[attrAddress].address,
		opts...,
	)
	if err != nil {
		return nil, errs.NewFormatIsInvalidErrorWithCause(p.source, start, err)
	}
	return o, nil
}
