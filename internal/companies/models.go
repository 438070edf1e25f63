// Package companies manages the catalog of analyzable MENA companies.
package companies

// Company is one listed company in the analysis universe.
type Company struct {
	Ticker  string `json:"ticker"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Sector  string `json:"sector"`
}
