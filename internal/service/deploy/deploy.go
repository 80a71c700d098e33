package deploy

import (
	"context"
	"fmt"
)

// InvalidationPaths はデプロイ時に無効化するパス（常に全パス）
var InvalidationPaths = []string{"/*"}

// Run はデプロイパイプラインを先頭から順に実行する
//
// いずれかのステップが失敗した時点でエラーを返して中断する。
// 同期失敗後のバケットの部分更新、無効化失敗後のエッジキャッシュ残留は
// 仕様上許容され、巻き戻しは行わない。
func (d *Deployer) Run(ctx context.Context, opts Options) error {
	// 1. 前提条件の検証（副作用なし）
	if err := d.preflight(ctx); err != nil {
		return err
	}

	// 2. 確認プロンプト
	if !opts.Force {
		ok, err := d.confirm()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(d.Out, "🚫 デプロイをキャンセルしました")
			return nil
		}
	}

	// 3. ビルド
	if opts.SkipBuild {
		fmt.Fprintln(d.Out, "⏭️  [3/5] ビルドをスキップします（--skip-build）")
	} else if err := d.build(ctx); err != nil {
		return err
	}

	// 4. ビルド成果物の同期
	if err := d.syncArtifacts(ctx); err != nil {
		return err
	}

	// 5. CDNキャッシュの無効化
	if err := d.invalidate(ctx); err != nil {
		return err
	}

	fmt.Fprintln(d.Out, "\n🎉 デプロイが完了しました")
	return nil
}

// build は静的サイトのビルドを実行する
func (d *Deployer) build(ctx context.Context) error {
	fmt.Fprintln(d.Out, "\n🔨 [3/5] サイトをビルドしています...")
	if err := d.Hugo.Build(ctx, d.Target.SiteDir); err != nil {
		return &BuildError{Err: err}
	}
	fmt.Fprintln(d.Out, "✅ ビルドが完了しました")
	return nil
}

// syncArtifacts はビルド成果物をデプロイ先バケットへ一方向同期する
func (d *Deployer) syncArtifacts(ctx context.Context) error {
	outputPath := d.Target.OutputPath()
	fmt.Fprintf(d.Out, "\n📦 [4/5] %s を s3://%s へ同期しています...\n", outputPath, d.Target.Bucket)
	if err := d.Sync.Sync(ctx, outputPath, d.Target.S3Uri()); err != nil {
		return &SyncError{Err: err}
	}
	fmt.Fprintln(d.Out, "✅ 同期が完了しました")
	return nil
}

// invalidate は全パスのキャッシュ無効化リクエストを送信する
//
// リクエストの送信のみ行い、完了は待たない（完了を待つ場合は invalidate -w を使う）
func (d *Deployer) invalidate(ctx context.Context) error {
	fmt.Fprintf(d.Out, "\n🌀 [5/5] CloudFrontディストリビューション (%s) のキャッシュを無効化しています...\n", d.Target.DistributionId)
	invalidationId, err := d.Cdn.Invalidate(ctx, d.Target.DistributionId, InvalidationPaths)
	if err != nil {
		return &InvalidationError{Err: err}
	}
	fmt.Fprintf(d.Out, "✅ キャッシュ無効化を開始しました (ID: %s)\n", invalidationId)
	return nil
}
