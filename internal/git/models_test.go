package git

import "testing"

func TestChangeStatus_Kind(t *testing.T) {
	tests := []struct {
		status   ChangeStatus
		expected ChangeKind
	}{
		{status: "A", expected: ChangeKindAdded},
		{status: "M", expected: ChangeKindModified},
		{status: "T", expected: ChangeKindModified},
		{status: "D", expected: ChangeKindDeleted},
		{status: "R100", expected: ChangeKindRenamed},
		{status: "C75", expected: ChangeKindAdded},
		{status: "X", expected: ChangeKindUnknown},
		{status: "", expected: ChangeKindUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Kind(); got != tt.expected {
				t.Errorf("ChangeStatus(%q).Kind() = %v, expected %v", tt.status, got, tt.expected)
			}
		})
	}
}

func TestChangeStatus_Code(t *testing.T) {
	tests := []struct {
		status   ChangeStatus
		expected string
	}{
		{status: "M", expected: "M"},
		{status: "R100", expected: "R"},
		{status: " D ", expected: "D"},
		{status: "", expected: ""},
	}

	for _, tt := range tests {
		if got := tt.status.Code(); got != tt.expected {
			t.Errorf("ChangeStatus(%q).Code() = %q, expected %q", tt.status, got, tt.expected)
		}
	}
}

func TestChangeKind_String(t *testing.T) {
	tests := []struct {
		kind     ChangeKind
		expected string
	}{
		{ChangeKindAdded, "added"},
		{ChangeKindModified, "modified"},
		{ChangeKindDeleted, "deleted"},
		{ChangeKindRenamed, "renamed"},
		{ChangeKindUnknown, "unknown"},
		{ChangeKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("ChangeKind(%d).String() = %q, expected %q", tt.kind, got, tt.expected)
		}
	}
}
