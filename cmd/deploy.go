package cmd

import (
	"fmt"
	"os"

	"blogctl/internal/aws"
	cfsvc "blogctl/internal/service/cloudfront"
	"blogctl/internal/service/deploy"
	s3svc "blogctl/internal/service/s3"

	"github.com/spf13/cobra"
)

// deployCmd represents the deploy command
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "ブログをビルドしてS3 + CloudFrontへデプロイ",
	Long: `ブログをビルドし、成果物をS3バケットへ同期してCloudFrontのキャッシュを無効化します。

前提条件の検証 → 確認 → ビルド → 同期 → キャッシュ無効化 の順で実行し、
いずれかのステップが失敗した時点で中断します（巻き戻しは行いません）。

【使い方】
  ` + AppName + ` deploy               # 通常のデプロイ
  ` + AppName + ` deploy -f            # 確認プロンプトをスキップ
  ` + AppName + ` deploy --skip-build  # ビルド済みのpublic/をそのままデプロイ`,
	SilenceUsage: true,
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		force, _ := cmdCobra.Flags().GetBool("force")
		skipBuild, _ := cmdCobra.Flags().GetBool("skip-build")

		clients, err := aws.NewClients(&awsCtx)
		if err != nil {
			return fmt.Errorf("❌ AWS設定の読み込みに失敗: %w", err)
		}

		d := &deploy.Deployer{
			Target: target,
			Hugo:   deploy.HugoCli{},
			Sync:   deploy.AwsSync{AwsCtx: awsCtx},
			Prober: s3svc.Prober{Client: clients.S3()},
			Cdn:    cfsvc.Invalidator{Client: clients.CloudFront()},
			In:     os.Stdin,
			Out:    os.Stdout,
		}

		return d.Run(cmdCobra.Context(), deploy.Options{
			Force:     force,
			SkipBuild: skipBuild,
		})
	},
}

func init() {
	RootCmd.AddCommand(deployCmd)
	deployCmd.Flags().BoolP("force", "f", false, "確認プロンプトをスキップ")
	deployCmd.Flags().Bool("skip-build", false, "ビルドを省略して既存の出力ディレクトリを同期")
}
