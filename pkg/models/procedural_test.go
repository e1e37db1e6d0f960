package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsProcedural(t *testing.T) {
	procedural := []string{
		"Call to Order",
		"ROLL CALL",
		"Approval of the Minutes",
		"Approval of Minutes - October 7, 2025",
		"Public Comment",
		"Adjournment",
		"Adjourn",
		"Recess to Closed Session",
		"Pledge of Allegiance",
		"",
	}
	for _, title := range procedural {
		assert.True(t, IsProcedural(title), "expected procedural: %q", title)
	}

	substantive := []string{
		"An ordinance rezoning 100 Main St",
		"FY26 Budget Adoption",
		"Resolution calling for a public hearing on utility rates",
		"Contract award: sidewalk repairs",
		"Public Safety Department quarterly report",
	}
	for _, title := range substantive {
		assert.False(t, IsProcedural(title), "expected substantive: %q", title)
	}
}
