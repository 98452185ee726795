package wbdomain

import "strings"

const (
	TaskStatusDone     = "done"
	TaskStatusCanceled = "canceled"
	TaskStatusPurged   = "purged"
)

type TaskCreated struct {
	Data struct {
		TaskID string `json:"taskId"`
	} `json:"data"`
}

type TaskStatus struct {
	Data struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"data"`
}

func (s TaskStatus) IsDone() bool {
	return strings.EqualFold(s.Data.Status, TaskStatusDone)
}

// IsFailed indica que a tarefa nunca ficará pronta para download
func (s TaskStatus) IsFailed() bool {
	return strings.EqualFold(s.Data.Status, TaskStatusCanceled) ||
		strings.EqualFold(s.Data.Status, TaskStatusPurged)
}

type PaidStorageRow struct {
	NmID           int64   `json:"nmId"`
	Date           string  `json:"date"`
	WarehousePrice float64 `json:"warehousePrice"`
}

type AcceptanceRow struct {
	NmID  int64   `json:"nmID"`
	Total float64 `json:"total"`
}
