package cloudfront

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/schollz/progressbar/v3"
)

// NewCallerReference は無効化リクエストの一意トークンを生成する
//
// CloudFrontは同一CallerReferenceのリクエストを重複排除するため、
// 連続デプロイでも毎回新しい無効化が走るようナノ秒タイムスタンプを使う。
func NewCallerReference() string {
	return fmt.Sprintf("blogctl-%d", time.Now().UnixNano())
}

// CreateInvalidation はCloudFrontディストリビューションのキャッシュを無効化する
func CreateInvalidation(ctx context.Context, client *cloudfront.Client, distributionId string, paths []string) (string, error) {
	input := &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(distributionId),
		InvalidationBatch: &types.InvalidationBatch{
			CallerReference: aws.String(NewCallerReference()),
			Paths: &types.Paths{
				Quantity: aws.Int32(int32(len(paths))),
				Items:    paths,
			},
		},
	}

	result, err := client.CreateInvalidation(ctx, input)
	if err != nil {
		return "", err
	}

	return *result.Invalidation.Id, nil
}

// WaitForInvalidation は無効化が完了するまで待機する
func WaitForInvalidation(ctx context.Context, client *cloudfront.Client, distributionId, invalidationId string) error {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("無効化の完了を待機中..."),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)

	for {
		input := &cloudfront.GetInvalidationInput{
			DistributionId: aws.String(distributionId),
			Id:             aws.String(invalidationId),
		}

		result, err := client.GetInvalidation(ctx, input)
		if err != nil {
			return err
		}

		if aws.ToString(result.Invalidation.Status) == "Completed" {
			_ = bar.Finish()
			fmt.Println()
			return nil
		}

		// 10秒待機してから再確認（待機中はスピナーを進める）
		for i := 0; i < 20; i++ {
			_ = bar.Add(1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(500 * time.Millisecond):
			}
		}
	}
}

// Invalidator はdeployパッケージから使うためのアダプタ
type Invalidator struct {
	Client *cloudfront.Client
}

func (i Invalidator) Invalidate(ctx context.Context, distributionId string, paths []string) (string, error) {
	return CreateInvalidation(ctx, i.Client, distributionId, paths)
}
