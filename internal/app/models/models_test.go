package models

import "testing"

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"SEEKER", "EMPLOYER", "ADMIN"} {
		if _, err := ParseRole(valid); err != nil {
			t.Errorf("ParseRole(%q) error = %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "seeker", "SUPERUSER"} {
		if _, err := ParseRole(invalid); err == nil {
			t.Errorf("ParseRole(%q) accepted an unknown role", invalid)
		}
	}
}

func TestParseEmploymentType(t *testing.T) {
	for _, valid := range []string{"FULL_TIME", "PART_TIME", "CONTRACT", "TEMPORARY", "INTERNSHIP", "VOLUNTEER"} {
		if _, err := ParseEmploymentType(valid); err != nil {
			t.Errorf("ParseEmploymentType(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseEmploymentType("full_time"); err == nil {
		t.Error("ParseEmploymentType accepted a lowercase value")
	}
}

func TestParseLocationType(t *testing.T) {
	for _, valid := range []string{"REMOTE", "HYBRID", "ON_SITE"} {
		if _, err := ParseLocationType(valid); err != nil {
			t.Errorf("ParseLocationType(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseLocationType("ONSITE"); err == nil {
		t.Error("ParseLocationType accepted an unknown value")
	}
}

func TestParseJobStatus(t *testing.T) {
	for _, valid := range []string{"DRAFT", "ACTIVE", "CLOSED"} {
		if _, err := ParseJobStatus(valid); err != nil {
			t.Errorf("ParseJobStatus(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseJobStatus("ARCHIVED"); err == nil {
		t.Error("ParseJobStatus accepted an unknown value")
	}
}

func TestParseApplicationStatus(t *testing.T) {
	for _, valid := range []string{"APPLIED", "REVIEWED", "INTERVIEWED", "REJECTED", "OFFERED"} {
		if _, err := ParseApplicationStatus(valid); err != nil {
			t.Errorf("ParseApplicationStatus(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseApplicationStatus("GHOSTED"); err == nil {
		t.Error("ParseApplicationStatus accepted an unknown value")
	}
}
