package models

import (
	"testing"
)

func TestValidLeadStatus(t *testing.T) {
	for _, s := range []string{LeadNew, LeadContacted, LeadQualified, LeadMeetingScheduled, LeadWon, LeadLost} {
		if !ValidLeadStatus(s) {
			t.Errorf("ValidLeadStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "open", "WON", "deleted"} {
		if ValidLeadStatus(s) {
			t.Errorf("ValidLeadStatus(%q) = true, want false", s)
		}
	}
}

func TestCanAdvanceLead(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{LeadNew, LeadContacted, true},
		{LeadNew, LeadWon, true},
		{LeadContacted, LeadQualified, true},
		{LeadQualified, LeadMeetingScheduled, true},
		{LeadMeetingScheduled, LeadWon, true},
		{LeadMeetingScheduled, LeadLost, true},
		{LeadNew, LeadNew, true},
		{LeadContacted, LeadNew, false},
		{LeadQualified, LeadContacted, false},
		{LeadWon, LeadLost, false},
		{LeadLost, LeadContacted, false},
		{LeadWon, LeadNew, false},
		{"bogus", LeadContacted, false},
		{LeadNew, "bogus", false},
	}

	for _, tc := range cases {
		if got := CanAdvanceLead(tc.from, tc.to); got != tc.want {
			t.Errorf("CanAdvanceLead(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
