package services

import (
	"testing"

	"budget-coach/internal/models"

	"github.com/stretchr/testify/suite"
)

type ForecasterTestSuite struct {
	suite.Suite
	forecaster ForecasterInterface
}

func (s *ForecasterTestSuite) SetupTest() {
	s.forecaster = NewForecaster()
}

func TestForecasterSuite(t *testing.T) {
	suite.Run(t, new(ForecasterTestSuite))
}

func (s *ForecasterTestSuite) TestForecast_ManualBillsClampToMonthEnd() {
	bills := []models.Bill{{Name: "Rent", Amount: dec("1450"), DueDay: 31, Category: "Housing"}}

	projected, err := s.forecaster.Forecast(bills, nil, day(2025, 1, 15), 60)

	s.Require().NoError(err)
	s.Require().Len(projected, 2)
	s.Equal(day(2025, 1, 31), projected[0].Date)
	s.Equal(day(2025, 2, 28), projected[1].Date)
	s.Equal(models.SourceManualBill, projected[0].Source)
	s.Equal("Housing", projected[0].Category)
}

func (s *ForecasterTestSuite) TestForecast_CandidatesStepByCadence() {
	candidates := []models.RecurringBillCandidate{{
		Signature:        "netflix",
		Name:             "NETFLIX",
		TypicalAmount:    dec("15.49"),
		Cadence:          models.CadenceMonthly,
		CadenceDays:      30,
		NextExpectedDate: day(2025, 4, 1),
		Category:         models.CategoryMiscellaneous,
	}}

	projected, err := s.forecaster.Forecast(nil, candidates, day(2025, 3, 31), 90)

	s.Require().NoError(err)
	s.Require().Len(projected, 3)
	s.Equal(day(2025, 4, 1), projected[0].Date)
	s.Equal(day(2025, 5, 1), projected[1].Date)
	s.Equal(day(2025, 5, 31), projected[2].Date)
	for _, p := range projected {
		s.Equal(models.SourceDetectedRecurring, p.Source)
		s.Equal("miscellaneous", p.Category)
	}
}

func (s *ForecasterTestSuite) TestForecast_OverdueCandidateRollsForward() {
	candidates := []models.RecurringBillCandidate{{
		Signature:        "gym",
		Name:             "Gym",
		TypicalAmount:    dec("40"),
		CadenceDays:      7,
		NextExpectedDate: day(2025, 3, 1),
	}}

	projected, err := s.forecaster.Forecast(nil, candidates, day(2025, 3, 10), 7)

	s.Require().NoError(err)
	s.Require().Len(projected, 1)
	s.Equal(day(2025, 3, 15), projected[0].Date)
}

func (s *ForecasterTestSuite) TestForecast_TrackedCandidatesAreSuppressed() {
	bills := []models.Bill{
		{Name: "Netflix", Amount: dec("15.49"), DueDay: 1},
		{Name: "Phone", Amount: dec("85"), DueDay: 12, SourceSignature: "verizon wireless"},
	}
	candidates := []models.RecurringBillCandidate{
		{Signature: "netflix", Name: "NETFLIX", TypicalAmount: dec("15.49"), CadenceDays: 30, NextExpectedDate: day(2025, 4, 1)},
		{Signature: "verizon wireless", Name: "Verizon Wireless", TypicalAmount: dec("85"), CadenceDays: 30, NextExpectedDate: day(2025, 4, 12)},
	}

	projected, err := s.forecaster.Forecast(bills, candidates, day(2025, 3, 31), 30)

	s.Require().NoError(err)
	for _, p := range projected {
		s.Equal(models.SourceManualBill, p.Source)
	}
	s.Len(projected, 2)
}

func (s *ForecasterTestSuite) TestForecast_SortedAndBounded() {
	bills := []models.Bill{
		{Name: "Water", Amount: dec("30"), DueDay: 5},
		{Name: "Electric", Amount: dec("90"), DueDay: 5},
		{Name: "Rent", Amount: dec("1450"), DueDay: 1},
	}
	asOf := day(2025, 3, 2)

	projected, err := s.forecaster.Forecast(bills, nil, asOf, 34)

	s.Require().NoError(err)
	s.Require().Len(projected, 5)
	s.Equal("Electric", projected[0].Name)
	s.Equal("Water", projected[1].Name)
	s.Equal("Rent", projected[2].Name)
	s.Equal(day(2025, 4, 1), projected[2].Date)
	s.Equal("Electric", projected[3].Name)
	s.Equal(day(2025, 4, 5), projected[3].Date)
	s.Equal("Water", projected[4].Name)
	for _, p := range projected {
		s.False(p.Date.Before(asOf))
		s.False(p.Date.After(asOf.AddDate(0, 0, 34)))
	}
}

func (s *ForecasterTestSuite) TestForecast_InvalidHorizon() {
	_, err := s.forecaster.Forecast(nil, nil, day(2025, 3, 2), 0)

	s.ErrorIs(err, ErrInvalidHorizon)
}

func (s *ForecasterTestSuite) TestForecast_NothingToProject() {
	projected, err := s.forecaster.Forecast(nil, nil, day(2025, 3, 2), 30)

	s.Require().NoError(err)
	s.NotNil(projected)
	s.Empty(projected)
}
