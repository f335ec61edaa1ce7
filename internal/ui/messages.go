package ui

import "odgrip/internal/domain"

// dispatchedMsg carries the outcome of sending a request
type dispatchedMsg struct {
	req domain.Request
	via string
	err error
}

// copiedMsg carries the outcome of copying the preview URL
type copiedMsg struct {
	url string
	err error
}
