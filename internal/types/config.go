package types

type RunMode string

const (
	// ModeFunction evaluates a single function input read from stdin
	ModeFunction RunMode = "function"
	// ModeAPI serves evaluations over HTTP
	ModeAPI RunMode = "api"
	// ModeAWSLambdaAPI serves the HTTP routes behind API Gateway
	ModeAWSLambdaAPI RunMode = "aws_lambda_api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
