// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/opentools/internal/core/tool"
	"github.com/taibuivan/opentools/pkg/pointer"
)

/*
TestTool_Pricing classifies tools by their plans.
*/
func TestTool_Pricing(t *testing.T) {
	tests := []struct {
		name     string
		plans    []tool.PricingPlan
		wantFree bool
		wantPaid bool
	}{
		{"no_plans", nil, true, false},
		{"contact_us", []tool.PricingPlan{{Title: "Enterprise"}}, true, false},
		{"zero_price", []tool.PricingPlan{{Price: pointer.To(0.0)}}, true, false},
		{"paid_only", []tool.PricingPlan{{Price: pointer.To(20.0)}}, false, true},
		{"freemium", []tool.PricingPlan{{Price: pointer.To(0.0)}, {Price: pointer.To(9.5)}}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &tool.Tool{PricingPlans: tt.plans}
			assert.Equal(t, tt.wantFree, item.IsFree())
			assert.Equal(t, tt.wantPaid, item.IsPaid())
		})
	}
}

/*
TestTool_HasSlug ignores whitespace-only slugs.
*/
func TestTool_HasSlug(t *testing.T) {
	assert.True(t, (&tool.Tool{Slug: "chatgpt"}).HasSlug())
	assert.False(t, (&tool.Tool{Slug: "  "}).HasSlug())
	assert.False(t, (&tool.Tool{}).HasSlug())
}
