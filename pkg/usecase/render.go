package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indicator/pkg/domain/model/config"
	"github.com/secmon-lab/indicator/pkg/domain/model/indicator"
	"github.com/secmon-lab/indicator/pkg/domain/types"
	"github.com/secmon-lab/indicator/pkg/utils/logging"
)

// Record is one resource as decoded from the input, keyed by attribute name
type Record map[string]any

// Cell is one indicator resolved against one record
type Cell struct {
	IndicatorID types.IndicatorID
	Value       any
	Display     indicator.Display

	field *indicator.Field
}

// LabelsHidden reports whether the indicator shows only its color
func (c Cell) LabelsHidden() bool {
	return c.field.LabelsHidden()
}

// Payload returns the widget metadata for the cell
func (c Cell) Payload() map[string]any {
	p := c.field.Payload(c.Value, c.Display)
	p["id"] = c.IndicatorID.String()
	return p
}

// Row holds the resolved cells of one record, in definition order
type Row struct {
	Index int
	Cells []Cell
}

// RenderInput selects the records to render and, optionally, which
// indicators to resolve. Empty IndicatorIDs means all configured indicators.
type RenderInput struct {
	Records      []Record
	IndicatorIDs []types.IndicatorID
}

type RenderUseCase struct {
	indicators *config.IndicatorSet
}

func NewRenderUseCase(indicators *config.IndicatorSet) *RenderUseCase {
	return &RenderUseCase{
		indicators: indicators,
	}
}

// Execute resolves every selected indicator against every record. Each
// indicator reads the record attribute it is configured for; a missing
// attribute resolves as nil.
func (uc *RenderUseCase) Execute(ctx context.Context, input RenderInput) ([]Row, error) {
	defs, err := uc.selectDefinitions(input.IndicatorIDs)
	if err != nil {
		return nil, err
	}

	logger := logging.From(ctx)
	logger.Debug("rendering records",
		"record_count", len(input.Records),
		"indicator_count", len(defs))

	rows := make([]Row, 0, len(input.Records))
	for idx, record := range input.Records {
		row := Row{
			Index: idx,
			Cells: make([]Cell, 0, len(defs)),
		}

		for _, def := range defs {
			attr := def.Field.Attribute()
			value := record[attr]

			display, err := def.Field.Resolve(value, record)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to resolve indicator",
					goerr.V(IndicatorIDKey, def.ID),
					goerr.V(RecordIndexKey, idx),
					goerr.V(AttributeKey, attr))
			}

			row.Cells = append(row.Cells, Cell{
				IndicatorID: def.ID,
				Value:       value,
				Display:     display,
				field:       def.Field,
			})
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func (uc *RenderUseCase) selectDefinitions(ids []types.IndicatorID) ([]config.IndicatorDefinition, error) {
	if len(ids) == 0 {
		return uc.indicators.Definitions, nil
	}

	defs := make([]config.IndicatorDefinition, 0, len(ids))
	for _, id := range ids {
		def, ok := uc.indicators.Lookup(id)
		if !ok {
			return nil, goerr.Wrap(ErrIndicatorNotFound, "unknown indicator requested",
				goerr.V(IndicatorIDKey, id))
		}
		defs = append(defs, *def)
	}
	return defs, nil
}
