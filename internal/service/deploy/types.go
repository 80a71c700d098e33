package deploy

import (
	"context"
	"io"

	"blogctl/internal/config"
)

// BuildTool は静的サイトジェネレータのCLIを抽象化するインターフェース
type BuildTool interface {
	// Version は `hugo version` 相当の出力を返す
	Version(ctx context.Context) (string, error)
	// Build はサイトをビルドする（子プロセスの出力は親にそのまま流す）
	Build(ctx context.Context, siteDir string) error
}

// SyncTool はローカルディレクトリをリモートストレージへ同期するCLIを抽象化するインターフェース
//
// 同期の詳細（差分判定や削除の扱い）は外部ツール側の仕様に委ねる
type SyncTool interface {
	Available() bool
	Sync(ctx context.Context, localDir string, destUri string) error
}

// BucketProber はデプロイ先バケットへの読み取りアクセス可否を判定するインターフェース
type BucketProber interface {
	CanAccess(ctx context.Context, bucket string) bool
}

// CacheInvalidator はCDNのキャッシュ無効化リクエストを送信するインターフェース
type CacheInvalidator interface {
	Invalidate(ctx context.Context, distributionId string, paths []string) (string, error)
}

// Options はdeployコマンドのオプション
type Options struct {
	Force     bool // 確認プロンプトをスキップ
	SkipBuild bool // ビルドを省略して既存の出力ディレクトリを同期
}

// Deployer はデプロイパイプライン全体を保持する
//
// Validating → Confirming → Building → Syncing → Invalidating の直列実行で、
// 最初の失敗で即座に中断する。並行実行やステップ間のリトライはない。
type Deployer struct {
	Target config.Target

	Hugo   BuildTool
	Sync   SyncTool
	Prober BucketProber
	Cdn    CacheInvalidator

	In  io.Reader // 確認プロンプトの入力元
	Out io.Writer // 進行メッセージの出力先
}
