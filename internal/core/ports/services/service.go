package services

// ServiceContainer holds all services needed by the handlers and the startup
// sequence. Populated once in main via services.NewServiceContainer.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Category    CategorySvcFacade
	SavingGoal  SavingGoalSvcFacade
	Transaction TransactionSvcFacade
	Settings    SettingsSvcFacade
	Reporting   ReportingSvcFacade
	Recurrence  RecurrenceSvc
	CarryOver   CarryOverSvc
	DataRepair  DataRepairSvc
}
