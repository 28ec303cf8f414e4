package reports

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/abiosoft/lineprefix"
	"github.com/aquilax/truncate"
	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pescuma/takeoff/lib/model"
)

// Reporter renders takeoff results as plain text, one section at a time.
type Reporter struct {
	out io.Writer
	pc  *pluralize.Client
	mp  *message.Printer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out: out,
		pc:  pluralize.NewClient(),
		mp:  message.NewPrinter(language.English),
	}
}

func (r *Reporter) money(v float64) string {
	return r.mp.Sprintf("$%.2f", v)
}

const nameWidth = 48

func (r *Reporter) WriteEstimate(e *model.Estimate) {
	m := e.Measurements

	r.printf("Estimate: %v  (%v)\n", e.Name, e.ID)
	r.printf("System: %v\n", m.SystemName)
	if m.SpecRef != "" {
		r.printf("Spec sections: %v\n", m.SpecRef)
	}
	r.printf("\n")

	r.printf("Measurements:\n")
	body := r.indent()
	fmt.Fprintf(body, "Roof area:       %v sqft\n", humanize.CommafWithDigits(m.TotalRoofAreaSqft, 0))
	fmt.Fprintf(body, "Perimeter:       %v LF\n", humanize.CommafWithDigits(m.PerimeterLf, 0))
	fmt.Fprintf(body, "Parapet length:  %v LF at %.1f ft\n", humanize.CommafWithDigits(m.ParapetLengthLf, 0), m.ParapetHeightFt)
	fmt.Fprintf(body, "Strip area:      %v sqft\n", humanize.CommafWithDigits(m.StripAreaSqft, 0))
	fmt.Fprintf(body, "Metal area:      %v sqft\n", humanize.CommafWithDigits(m.MetalAreaSqft, 0))
	fmt.Fprintf(body, "Penetrations:    %v\n", m.TotalPenetrations)
	r.printf("\n")

	r.writeItems("Field materials (by area)", e.AreaItems)
	r.writeItems("Perimeter materials (by length)", e.LinearItems)
	r.writeItems("Unit materials (by count)", e.UnitItems)
	r.writeItems("Consumables & addenda", e.Consumables)
	r.writeItems("Wood work", e.WoodItems)

	if e.Labor.Total() > 0 {
		r.printf("Labor hours (informational):\n")
		body = r.indent()
		fmt.Fprintf(body, "Curbs:      %6.1f h\n", e.Labor.CurbHours)
		fmt.Fprintf(body, "Vents:      %6.1f h\n", e.Labor.VentHours)
		fmt.Fprintf(body, "Perimeter:  %6.1f h\n", e.Labor.PerimeterHours)
		fmt.Fprintf(body, "Total:      %6.1f h\n", e.Labor.Total())
		r.printf("\n")
	}

	r.WriteBidSummary(&e.BidSummary)
	r.writeWarnings(e.Warnings)
}

func (r *Reporter) writeItems(title string, items []*model.LineItem) {
	if len(items) == 0 {
		return
	}

	r.printf("%v:\n", title)

	body := r.indent()
	for _, i := range items {
		name := truncate.Truncate(i.Name, nameWidth, "...", truncate.PositionEnd)
		fmt.Fprintf(body, "%-*v %8.0f %-14v %11v", nameWidth, name, i.Quantity, i.Unit,
			r.money(i.LineCost))
		if i.Note != "" {
			fmt.Fprintf(body, "  (%v)", i.Note)
		}
		fmt.Fprintf(body, "\n")
	}

	r.printf("\n")
}

func (r *Reporter) WriteDetailTakeoff(t *model.DetailTakeoff) {
	r.printf("Detail takeoff: %v on %v sqft\n\n",
		r.pc.Pluralize("detail", len(t.Details), true),
		humanize.CommafWithDigits(t.Measurements.TotalRoofAreaSqft, 0))

	for _, d := range t.Details {
		r.printf("%v  [%v]  (ref: %v)\n", d.Name, d.Type, d.DrawingRef)

		body := r.indent()
		fmt.Fprintf(body, "quantity: %v %v (from %v)\n",
			humanize.CommafWithDigits(d.BaseQuantity, 1), d.MeasurementType, d.QuantitySource)

		for _, l := range d.Layers {
			name := truncate.Truncate(l.Material, nameWidth, "...", truncate.PositionEnd)
			fmt.Fprintf(body, "%-*v -> %-28v %6.0f %-10v %v\n", nameWidth, name, l.PricingKey,
				l.Quantity, l.Unit, r.money(l.LineCost))
		}

		switch {
		case d.Suppressed:
			fmt.Fprintf(body, "%v\n", d.Note)
		case d.Capped:
			fmt.Fprintf(body, "cost: %v (capped from %v)\n",
				r.money(d.Cost), r.money(d.UncappedCost))
		default:
			fmt.Fprintf(body, "cost: %v\n", r.money(d.Cost))
		}

		r.printf("\n")
	}

	r.printf("Total material cost: %v\n\n", r.money(t.TotalMaterialCost))

	r.WriteBidSummary(&t.BidSummary)

	if t.StandardComparison != nil {
		r.printf("For comparison, the standard catalog takeoff on the same measurements:\n\n")
		r.WriteBidSummary(t.StandardComparison)
	}

	r.writeWarnings(t.Warnings)
}

func (r *Reporter) WriteJoinedTakeoff(t *model.JoinedTakeoff) {
	r.printf("Joined takeoff: %v, %v\n\n",
		r.pc.Pluralize("resolved line item", t.TotalLineItems, true),
		r.pc.Pluralize("resolution failure", t.TotalFailures, true))

	if len(t.Items) > 0 {
		r.printf("Resolved items:\n")
		body := r.indent()
		for _, i := range t.Items {
			name := truncate.Truncate(i.DetailName, nameWidth, "...", truncate.PositionEnd)
			fmt.Fprintf(body, "%-*v -> %-28v %6.0f %-10v %11v  (qty from %v, spec pages %v)\n",
				nameWidth, name, i.ProductName, i.Quantity, i.Unit,
				r.money(i.LineCost), i.QuantitySource, i.SpecPages)
		}
		r.printf("\n")
	}

	if len(t.Failures) > 0 {
		r.printf("Unresolved details (no confirmed product matched):\n")
		body := r.indent()
		for _, f := range t.Failures {
			fmt.Fprintf(body, "%v  [%v]  tried: %v\n", f.DetailName, f.DetailType, f.Candidates)
		}
		r.printf("\n")
	}

	r.printf("Total material cost: %v\n\n", r.money(t.TotalMaterialCost))

	r.WriteBidSummary(&t.BidSummary)
}

func (r *Reporter) WriteBidSummary(b *model.BidSummary) {
	r.printf("Bid summary:\n")

	body := r.indent()
	r.writeBidItem(body, &b.RoofingAndFlashing)
	r.writeBidItem(body, &b.MechanicalSupport)
	r.writeBidItem(body, &b.OtherCosts)
	r.writeBidItem(body, &b.GeneralRequirements)
	fmt.Fprintf(body, "%-44v %13v  (%v/sqft)\n", "Total",
		r.money(b.TotalEstimate), r.money(b.PerSqft))

	r.printf("\n")
}

func (r *Reporter) writeBidItem(out io.Writer, i *model.BidItem) {
	if i.EstimatedCost == 0 && i.MaterialCost == 0 {
		return
	}

	fmt.Fprintf(out, "%-44v %13v", i.Description, r.money(i.EstimatedCost))
	if i.LaborMultiplier > 1 {
		fmt.Fprintf(out, "  (materials %v x %.2f)", r.money(i.MaterialCost), i.LaborMultiplier)
	}
	if i.Note != "" {
		fmt.Fprintf(out, "  [%v]", i.Note)
	}
	fmt.Fprintf(out, "\n")
}

func (r *Reporter) writeWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	r.printf("%v:\n", r.pc.Pluralize("Warning", len(warnings), true))

	body := r.indent()
	for _, w := range warnings {
		fmt.Fprintf(body, "- %v\n", w)
	}

	r.printf("\n")
}

func (r *Reporter) printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

func (r *Reporter) indent() io.Writer {
	return lineprefix.New(lineprefix.Writer(r.out), lineprefix.Prefix("   "))
}

// WriteJson dumps any takeoff result for downstream tooling.
func WriteJson(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
