package deploy

import (
	"context"
	"fmt"
	"regexp"
)

// 受け入れるHugoのバージョンパターン（v0.120以降のv0.x系）
var hugoVersionPattern = regexp.MustCompile(`hugo v0\.(1[2-9]\d|[2-9]\d{2})\.\d+`)

// preflight はデプロイの前提条件をすべて検証する
//
// すべてのチェックは副作用を持たない読み取りのみで、
// ひとつでも満たされない場合はバケットに触れる前に中断する。
func (d *Deployer) preflight(ctx context.Context) error {
	fmt.Fprintln(d.Out, "🔍 [1/5] 前提条件を確認しています...")

	if d.Target.Bucket == "" || d.Target.DistributionId == "" {
		return &ConfigurationError{Err: fmt.Errorf("デプロイ先のバケット・ディストリビューションが設定されていません")}
	}

	// Hugoの存在とバージョンの確認
	version, err := d.Hugo.Version(ctx)
	if err != nil {
		return &ToolingError{Tool: "hugo", Err: err}
	}
	if !hugoVersionPattern.MatchString(version) {
		return &ToolingError{Tool: "hugo", Detail: fmt.Sprintf("対応していないバージョンです: %s（v0.120以降が必要）", version)}
	}

	// AWS CLIの存在確認（syncステップで使用）
	if !d.Sync.Available() {
		return &ToolingError{Tool: "aws", Detail: "AWS CLIが見つかりません。インストールしてください"}
	}

	// デプロイ先バケットへの読み取りプローブ
	if !d.Prober.CanAccess(ctx, d.Target.Bucket) {
		return &AccessError{Bucket: d.Target.Bucket}
	}

	fmt.Fprintln(d.Out, "✅ 前提条件をすべて満たしています")
	return nil
}
