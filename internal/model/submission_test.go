package model

import (
	"encoding/json"
	"testing"
)

func TestGradeValueNullVsOmitted(t *testing.T) {
	var req GradeSubmissionRequest
	if err := json.Unmarshal([]byte(`{"student_id":"s1","grade":null}`), &req); err != nil {
		t.Fatalf("unmarshal null grade: %v", err)
	}
	if !req.Grade.Present {
		t.Error("explicit null should mark the grade as present")
	}
	if req.Grade.Value != nil {
		t.Errorf("explicit null should carry no value, got %d", *req.Grade.Value)
	}

	req = GradeSubmissionRequest{}
	if err := json.Unmarshal([]byte(`{"student_id":"s1"}`), &req); err != nil {
		t.Fatalf("unmarshal omitted grade: %v", err)
	}
	if req.Grade.Present {
		t.Error("omitted field should not mark the grade as present")
	}

	req = GradeSubmissionRequest{}
	if err := json.Unmarshal([]byte(`{"student_id":"s1","grade":87}`), &req); err != nil {
		t.Fatalf("unmarshal numeric grade: %v", err)
	}
	if !req.Grade.Present || req.Grade.Value == nil || *req.Grade.Value != 87 {
		t.Errorf("numeric grade not captured: %+v", req.Grade)
	}
}
