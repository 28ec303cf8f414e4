package model

// ResolvedLineItem is one fusion output row: quantity from the spatial
// dataset, identity from the confirmed-spec dataset.
type ResolvedLineItem struct {
	DetailName string
	DetailType string
	DrawingRef string

	PricingKey  string
	ProductName string
	SpecPages   []int

	Quantity       float64
	Unit           string
	QuantitySource QuantitySource

	UnitPrice float64
	LineCost  float64
}

// MaterialResolutionFailure records a detail whose material need could not
// be matched to any confirmed product. It is data, not an error.
type MaterialResolutionFailure struct {
	DetailName string
	DetailType string
	DrawingRef string

	// every pricing key that was tried, in order
	Candidates []string
}

// JoinedTakeoff is the fusion engine output.
type JoinedTakeoff struct {
	Items    []*ResolvedLineItem
	Failures []*MaterialResolutionFailure

	TotalLineItems    int
	TotalFailures     int
	TotalMaterialCost float64

	BidSummary BidSummary
}
