package constants

const (
	MAX_PAGE_SIZE               = 100
	DEFAULT_NOTIFICATIONS_LIMIT = 50
	DEFAULT_JOB_RUNS_LIMIT      = 20
)
