package deploy

import "fmt"

// デプロイの各ステップで発生するエラー型群。
// 発生したステップのエラーをそのままトップレベルまで伝播させ、
// 内部でのリトライや補償処理は行わない。

// ConfigurationError は必須の設定（環境変数など）が欠けている場合のエラー
type ConfigurationError struct {
	Missing string // 未設定の環境変数名（設定値不正の場合は空）
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("❌ 設定エラー: 環境変数 %s が設定されていません。-Pオプションまたは %s を指定してください", e.Missing, e.Missing)
	}
	return fmt.Sprintf("❌ 設定エラー: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ToolingError は外部CLIツールが見つからない、またはバージョンが合わない場合のエラー
type ToolingError struct {
	Tool   string // ツール名（hugo / aws）
	Detail string // バージョン不一致などの補足
	Err    error
}

func (e *ToolingError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("❌ ツールエラー: %s: %s", e.Tool, e.Detail)
	}
	return fmt.Sprintf("❌ ツールエラー: %s が実行できません: %v", e.Tool, e.Err)
}

func (e *ToolingError) Unwrap() error { return e.Err }

// AccessError はデプロイ先バケットへの読み取りプローブが失敗した場合のエラー
//
// プローブの生エラーはboolに畳み込まれるため、原因は保持しない（アクセス不可の事実のみ）。
type AccessError struct {
	Bucket string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("❌ アクセスエラー: バケット s3://%s にアクセスできません", e.Bucket)
}

// BuildError は静的サイトのビルドが非ゼロ終了した場合のエラー
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("❌ ビルドエラー: %v", e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// SyncError はビルド成果物のバケットへの同期が失敗した場合のエラー
//
// この時点でバケットは部分的に更新されている可能性があるが、ロールバックは行わない。
type SyncError struct {
	Err error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("❌ 同期エラー: %v", e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// InvalidationError はCDNキャッシュ無効化リクエストが失敗した場合のエラー
//
// 最終ステップのため、新しいコンテンツ自体はすでにバケットへ反映済み。
type InvalidationError struct {
	Err error
}

func (e *InvalidationError) Error() string {
	return fmt.Sprintf("❌ キャッシュ無効化エラー: %v", e.Err)
}

func (e *InvalidationError) Unwrap() error { return e.Err }
