package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// CheckBucketAccess はデプロイ先バケットへの読み取りアクセス可否を判定する
//
// HeadBucketの結果のみで判定し、失敗理由（404/403/301等）は区別しない。
// アクセス可否の事実だけが必要なため、元のエラーはboolに畳み込む。
func CheckBucketAccess(ctx context.Context, s3Client *s3.Client, bucketName string) bool {
	_, err := s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	return err == nil
}

// Prober はdeployパッケージから使うためのアダプタ
type Prober struct {
	Client *s3.Client
}

func (p Prober) CanAccess(ctx context.Context, bucket string) bool {
	return CheckBucketAccess(ctx, p.Client, bucket)
}
