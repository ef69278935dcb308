package services

import (
	"time"

	"github.com/Dung-L3/SEP490-G20-sub000/repository"
)

type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

type SalesReport struct {
	From      time.Time                  `json:"from"`
	To        time.Time                  `json:"to"`
	Revenue   *repository.RevenueSummary `json:"revenue"`
	TopDishes []repository.DishSales     `json:"topDishes"`
	Turnover  []repository.TableTurnover `json:"turnover"`
}

func (s *ReportService) Sales(from, to time.Time, topN int) (*SalesReport, error) {
	rev, err := s.Repo.Revenue(from, to)
	if err != nil {
		return nil, err
	}
	top, err := s.Repo.TopDishes(from, to, topN)
	if err != nil {
		return nil, err
	}
	turn, err := s.Repo.Turnover(from, to)
	if err != nil {
		return nil, err
	}
	return &SalesReport{From: from, To: to, Revenue: rev, TopDishes: top, Turnover: turn}, nil
}
