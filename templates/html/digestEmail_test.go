package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDailyDigestEmail(t *testing.T) {
	body := RenderDailyDigestEmail(7, 12)

	assert.Contains(t, body, "Festival Report Daily Digest")
	assert.Contains(t, body, ">7</span> new reports")
	assert.Contains(t, body, ">12</span> new comments")
}
