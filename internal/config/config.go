package config

import (
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Target はデプロイ先（S3バケット + CloudFrontディストリビューション）を表す不変の設定
//
// 値はビルド時定数のデフォルトを持ち、BLOG_* 環境変数で上書きできる。
// プロセス起動時に一度だけ読み込み、以降は値渡しで引き回す。
type Target struct {
	SiteDir        string `env:"BLOG_SITE_DIR" env-default:"."`
	OutputDir      string `env:"BLOG_OUTPUT_DIR" env-default:"public"`
	Bucket         string `env:"BLOG_BUCKET" env-default:"blog.example.com"`
	DistributionId string `env:"BLOG_DISTRIBUTION_ID" env-default:"E2EXAMPLE123456"`
	Region         string `env:"BLOG_REGION" env-default:"ap-northeast-1"`
}

// LoadTarget は環境変数からデプロイターゲット設定を読み込む
func LoadTarget() (Target, error) {
	var t Target
	if err := cleanenv.ReadEnv(&t); err != nil {
		return Target{}, err
	}
	return t, nil
}

// S3Uri は sync 先の s3://bucket/ 形式のURIを返す
func (t Target) S3Uri() string {
	return "s3://" + t.Bucket + "/"
}

// OutputPath はビルド出力ディレクトリの実際のパスを返す
//
// ビルドはSiteDir内で実行されるため、OutputDirが相対パスの場合は
// SiteDir基準で解決する。絶対パスの場合はそのまま使う。
func (t Target) OutputPath() string {
	if filepath.IsAbs(t.OutputDir) {
		return t.OutputDir
	}
	return filepath.Join(t.SiteDir, t.OutputDir)
}
