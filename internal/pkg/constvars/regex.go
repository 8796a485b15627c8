package constvars

const (
	RegexEmail = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
)
