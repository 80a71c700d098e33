package cmd

import (
	"fmt"

	"blogctl/internal/aws"
	cfsvc "blogctl/internal/service/cloudfront"

	"github.com/spf13/cobra"
)

// invalidateCmd represents the invalidate command
var invalidateCmd = &cobra.Command{
	Use:   "invalidate",
	Short: "CloudFrontのキャッシュのみを無効化",
	Long: `デプロイを行わず、設定済みディストリビューションのキャッシュだけを無効化します。

【使い方】
  ` + AppName + ` invalidate                    # 全体を無効化（/*）
  ` + AppName + ` invalidate -p "/posts/*"      # 特定パスを無効化
  ` + AppName + ` invalidate -w                 # 完了まで待機`,
	SilenceUsage: true,
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		paths, _ := cmdCobra.Flags().GetStringSlice("path")
		wait, _ := cmdCobra.Flags().GetBool("wait")

		clients, err := aws.NewClients(&awsCtx)
		if err != nil {
			return fmt.Errorf("❌ AWS設定の読み込みに失敗: %w", err)
		}
		cfClient := clients.CloudFront()

		fmt.Printf("🚀 CloudFrontディストリビューション (%s) のキャッシュを無効化します...\n", target.DistributionId)
		fmt.Printf("   対象パス: %v\n", paths)

		invalidationId, err := cfsvc.CreateInvalidation(cmdCobra.Context(), cfClient, target.DistributionId, paths)
		if err != nil {
			return fmt.Errorf("❌ キャッシュ無効化エラー: %w", err)
		}

		fmt.Printf("✅ キャッシュ無効化を開始しました (ID: %s)\n", invalidationId)

		if wait {
			fmt.Println("⏳ 無効化の完了を待機しています...")
			if err := cfsvc.WaitForInvalidation(cmdCobra.Context(), cfClient, target.DistributionId, invalidationId); err != nil {
				return fmt.Errorf("❌ 無効化待機エラー: %w", err)
			}
			fmt.Println("✅ キャッシュ無効化が完了しました")
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(invalidateCmd)
	invalidateCmd.Flags().StringSliceP("path", "p", []string{"/*"}, "無効化するパス（デフォルト: /*）")
	invalidateCmd.Flags().BoolP("wait", "w", false, "無効化完了まで待機")
}
