package cmd

import (
	"fmt"
	"os"

	"blogctl/internal/aws"
	s3svc "blogctl/internal/service/s3"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "公開中のサイトの内容をツリー表示",
	Long: `デプロイ先バケットの内容をツリー形式で表示します。

【使い方】
  ` + AppName + ` status       # ファイルサイズ付きで表示
  ` + AppName + ` status -t    # 更新日時も表示`,
	SilenceUsage: true,
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		showTime, _ := cmdCobra.Flags().GetBool("time")

		clients, err := aws.NewClients(&awsCtx)
		if err != nil {
			return fmt.Errorf("❌ AWS設定の読み込みに失敗: %w", err)
		}

		return s3svc.ShowBucketTree(cmdCobra.Context(), clients.S3(), target.Bucket, showTime, os.Stdout)
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolP("time", "t", false, "更新日時も表示")
}
