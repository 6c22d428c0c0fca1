package clients

import "time"

const (
	USER_AGENT      = "newslens-client/1.4 (+https://github.com/spacesedan/newslens)"
	DEFAULT_TIMEOUT = 15 * time.Second
)
