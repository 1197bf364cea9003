package models

import "time"

// ResultStatus enumerates outcomes of a performed material test.
type ResultStatus string

const (
	ResultStatusPass ResultStatus = "pass"
	ResultStatusFail ResultStatus = "fail"
)

// TestResult records a material test performed on a project.
type TestResult struct {
	ID             string       `db:"id" json:"id"`
	ProjectID      string       `db:"project_id" json:"projectId"`
	MaterialTestID string       `db:"material_test_id" json:"materialTestId"`
	Result         string       `db:"result" json:"result"`
	Status         ResultStatus `db:"status" json:"status"`
	TestedAt       time.Time    `db:"tested_at" json:"testedAt"`
	CreatedAt      time.Time    `db:"created_at" json:"createdAt"`
}

// TestResultView is the list view with display names joined in at read
// time. Dangling references render placeholders instead of failing.
type TestResultView struct {
	TestResult
	ProjectName string `json:"projectName"`
	TestName    string `json:"testName"`
}
