package models

// Direction of a financial movement.
const (
	DirectionCredit = "C"
	DirectionDebit  = "D"
)

// Movement modality of a ledger entry.
const (
	ModalityStandard  = "standard"
	ModalityFinancing = "financing"
	ModalityTransfer  = "transfer"
)

// Account nature codes used by the chart of accounts.
const (
	NatureRevenue    = "R" // revenue-type accounts
	NatureCost       = "C" // cost/expense-type accounts
	NatureInvestment = "I" // investment-type accounts
)

// Root segments of the chart-of-accounts hierarchy path.
// The root segment decides the bucket family for standard movements.
const (
	RootSegmentRevenue = "001"
	RootSegmentExpense = "002"
)

// Loan installment statuses.
const (
	InstallmentOpen    = "Open"
	InstallmentOverdue = "Overdue"
	InstallmentSettled = "Settled"
)

// DescriptionFallback is used when a statement block carries neither
// memo nor payee name.
const DescriptionFallback = "sem descricao"
