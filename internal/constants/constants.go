package constants

// 队列与任务常量
const (
	QueueDefault       = "default"
	TaskProductPurge   = "catalog:product_purge"
	TaskUserPurge      = "catalog:user_purge"
	PurgeMaxRetry      = 5
	PurgeTaskTimeoutMS = 30000
)

// 运行模式常量
const (
	RunModeAll    = "all"
	RunModeAPI    = "api"
	RunModeWorker = "worker"
)

// 数据库驱动常量
const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

// 分页默认值
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// 请求上下文键
const (
	ContextKeyRequestID = "request_id"
	HeaderRequestID     = "X-Request-ID"
)
