package constants

const (
	DefaultLimit = 10
	MaxLimit     = 100

	DataFormate = "2006-01-02 15:04:05"
)
