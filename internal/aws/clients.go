package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Clients はAWS設定と各サービスクライアントを管理
type Clients struct {
	cfg aws.Config

	// 遅延初期化されるクライアント群
	s3         *s3.Client
	cloudfront *cloudfront.Client
}

// NewClients は認証情報からAWS設定を読み込んでクライアント管理構造体を作成
//
// 設定はContext側にキャッシュされるため、同一Contextからの再作成で認証処理は走らない
func NewClients(ctx *Context) (*Clients, error) {
	cfg, err := ctx.GetConfig()
	if err != nil {
		return nil, err
	}

	return &Clients{cfg: cfg}, nil
}

// S3 は遅延初期化でS3クライアントを取得
func (c *Clients) S3() *s3.Client {
	if c.s3 == nil {
		c.s3 = s3.NewFromConfig(c.cfg)
	}
	return c.s3
}

// CloudFront は遅延初期化でCloudFrontクライアントを取得
func (c *Clients) CloudFront() *cloudfront.Client {
	if c.cloudfront == nil {
		c.cloudfront = cloudfront.NewFromConfig(c.cfg)
	}
	return c.cloudfront
}
