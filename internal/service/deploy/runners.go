package deploy

import (
	"context"

	"blogctl/internal/aws"
	"blogctl/internal/cli"
)

// HugoCli はhugoコマンドを直接起動するBuildToolの実装
type HugoCli struct{}

func (HugoCli) Version(ctx context.Context) (string, error) {
	return cli.HugoVersion(ctx)
}

func (HugoCli) Build(ctx context.Context, siteDir string) error {
	return cli.ExecuteHugoCommand(ctx, siteDir, []string{"--minify"})
}

// AwsSync は `aws s3 sync` を起動するSyncToolの実装
//
// --delete付きのため、ローカルに存在しないリモートオブジェクトは削除される
type AwsSync struct {
	AwsCtx aws.Context
}

func (a AwsSync) Available() bool {
	return cli.AwsCliAvailable()
}

func (a AwsSync) Sync(ctx context.Context, localDir string, destUri string) error {
	return cli.ExecuteAwsCommand(ctx, a.AwsCtx, []string{"s3", "sync", localDir, destUri, "--delete"})
}
