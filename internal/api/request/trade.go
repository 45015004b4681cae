package request

// CreateTradeRequest is the body of a manual trade entry. Decimal values
// travel as strings so precision survives the wire.
//
// BuyPrice and SellPrice are entry assistance only: when PnL is omitted it
// is computed as (sellPrice - buyPrice) * quantity, and the prices are not
// stored.
type CreateTradeRequest struct {
	Date      string `json:"date"`
	Symbol    string `json:"symbol,omitempty"`
	Quantity  int64  `json:"quantity"`
	PnL       string `json:"pnl,omitempty"`
	BuyPrice  string `json:"buyPrice,omitempty"`
	SellPrice string `json:"sellPrice,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}
