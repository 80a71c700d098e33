package cloudfront_test

import (
	"strings"
	"testing"

	cfsvc "blogctl/internal/service/cloudfront"

	"github.com/stretchr/testify/assert"
)

func TestNewCallerReferenceUnique(t *testing.T) {
	// 連続デプロイでもCloudFront側で重複排除されないよう、
	// 呼び出しごとに異なるトークンが生成されること
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := cfsvc.NewCallerReference()
		assert.True(t, strings.HasPrefix(ref, "blogctl-"), "ref = %s", ref)
		assert.False(t, seen[ref], "重複したCallerReference: %s", ref)
		seen[ref] = true
	}
}
