package cashflow

import (
	"github.com/sirupsen/logrus"

	"github.com/agrolivro/agrolivro/internal/models"
)

// fakeSource is an in-memory ReferenceSource for tests.
type fakeSource struct {
	accounts  []models.ChartAccount
	banks     []models.Bank
	people    []models.Person
	contracts []models.LoanContract

	accountsErr error
}

func (f *fakeSource) LoadChartAccounts() ([]models.ChartAccount, error) {
	return f.accounts, f.accountsErr
}
func (f *fakeSource) LoadBanks() ([]models.Bank, error)    { return f.banks, nil }
func (f *fakeSource) LoadPeople() ([]models.Person, error) { return f.people, nil }
func (f *fakeSource) LoadContracts() ([]models.LoanContract, error) {
	return f.contracts, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// farmChart is a minimal chart of accounts: one revenue branch
// (001.001 -> leaf 001.001.001), one expense branch, one investment leaf.
func farmChart() []models.ChartAccount {
	return []models.ChartAccount{
		{ID: 1, Level: 1, Path: "001", Description: "Receitas", Nature: models.NatureRevenue},
		{ID: 10, Level: 2, Path: "001.001", Description: "Venda de graos", Nature: models.NatureRevenue, ParentID: models.ID(1)},
		{ID: 100, Level: 3, Path: "001.001.001", Description: "Soja", Nature: models.NatureRevenue, ParentID: models.ID(10)},
		{ID: 2, Level: 1, Path: "002", Description: "Despesas", Nature: models.NatureCost},
		{ID: 20, Level: 2, Path: "002.001", Description: "Insumos", Nature: models.NatureCost, ParentID: models.ID(2)},
		{ID: 200, Level: 3, Path: "002.001.001", Description: "Fertilizantes", Nature: models.NatureCost, ParentID: models.ID(20)},
		{ID: 300, Level: 3, Path: "003.001.001", Description: "Trator", Nature: models.NatureInvestment, ParentID: models.ID(30)},
		{ID: 400, Level: 3, Path: "004.001.001", Description: "Fora da familia", Nature: models.NatureCost, ParentID: models.ID(40)},
		{ID: 500, Level: 3, Path: "001.009.001", Description: "Orfao", Nature: models.NatureRevenue},
	}
}

func newTestLookup() *Lookup {
	return NewLookup(&fakeSource{
		accounts: farmChart(),
		banks:    []models.Bank{{ID: 7, Code: "001", Name: "Banco do Brasil"}},
		people:   []models.Person{{ID: 3, Name: "Joao da Silva"}},
		contracts: []models.LoanContract{
			{ID: 1, PersonID: models.ID(3)},
			{ID: 2, BankID: models.ID(7)},
			{ID: 3, BankID: models.ID(99)},
			{ID: 4},
		},
	})
}
