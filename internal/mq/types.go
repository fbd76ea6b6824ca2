package mq

import (
	"time"
)

// ClickTag tags click messages on the topic
const ClickTag = "click"

// ClickMessage represents one successful redirect
type ClickMessage struct {
	Code       string    `json:"code"`
	AccessTime time.Time `json:"accessTime"`
}
