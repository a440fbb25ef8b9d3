package services

import (
	"wings/models"
	"wings/store"
)

// Products with fewer units than this are reported as low stock.
const LowStockThreshold = 5

// ReportingService recomputes every aggregate from the current collection
// snapshots on each call. Nothing is cached.
type ReportingService struct {
	store *store.Store
}

func NewReportingService(st *store.Store) *ReportingService {
	return &ReportingService{store: st}
}

type Overview struct {
	TotalStock   int              `json:"totalStock"`
	TotalRevenue float64          `json:"totalRevenue"`
	TotalSales   int              `json:"totalSales"`
	Products     []models.Product `json:"products"`
}

type Report struct {
	Sales        []models.Sale    `json:"sales"`
	TotalRevenue float64          `json:"totalRevenue"`
	LowStock     []models.Product `json:"lowStock"`
}

type BestSeller struct {
	ProductName   string `json:"productName"`
	TotalQuantity int    `json:"totalQuantity"`
}

// Overview sums stock across products and revenue across sales for the
// dashboard.
func (s *ReportingService) Overview() (*Overview, error) {
	products, err := s.store.Products()
	if err != nil {
		return nil, err
	}
	sales, err := s.store.Sales()
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		TotalSales: len(sales),
		Products:   products,
	}
	for _, p := range products {
		overview.TotalStock += p.Quantity
	}
	for _, sale := range sales {
		overview.TotalRevenue += sale.Revenue
	}
	return overview, nil
}

// Reporting returns all sales, the revenue total and the products below the
// low-stock threshold.
func (s *ReportingService) Reporting() (*Report, error) {
	products, err := s.store.Products()
	if err != nil {
		return nil, err
	}
	sales, err := s.store.Sales()
	if err != nil {
		return nil, err
	}

	report := &Report{
		Sales:    sales,
		LowStock: []models.Product{},
	}
	for _, sale := range sales {
		report.TotalRevenue += sale.Revenue
	}
	for _, p := range products {
		if p.Quantity < LowStockThreshold {
			report.LowStock = append(report.LowStock, p)
		}
	}
	return report, nil
}

// BestSelling returns the product name with the highest quantity summed
// across all its sale records, or nil when there are no sales. On a tie the
// earliest sale record reaching the maximum wins.
func BestSelling(sales []models.Sale) *BestSeller {
	if len(sales) == 0 {
		return nil
	}

	totals := make(map[string]int, len(sales))
	for _, sale := range sales {
		totals[sale.ProductName] += sale.Quantity
	}

	var best *BestSeller
	for _, sale := range sales {
		if best == nil || totals[sale.ProductName] > best.TotalQuantity {
			best = &BestSeller{
				ProductName:   sale.ProductName,
				TotalQuantity: totals[sale.ProductName],
			}
		}
	}
	return best
}
