package cmd

import (
	"os"

	"blogctl/internal/aws"
	"blogctl/internal/config"
	"blogctl/internal/service/deploy"

	"github.com/spf13/cobra"
)

// AppName はCLIのコマンド名
const AppName = "blogctl"

var profile string
var region string

var awsCtx aws.Context
var target config.Target

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "個人ブログのビルド・デプロイ用CLI",
	Long: `個人ブログ（Hugo製静的サイト）をS3 + CloudFront構成へデプロイするためのCLIです。

デプロイは build → sync → invalidate の一方向パイプラインで、
途中で失敗した場合はその場で中断します（リトライ・ロールバックなし）。`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "", "AWSリージョン")

	// コマンド実行前に共通でプロファイルチェックとターゲット設定読み込みを行う
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプとversionコマンドの場合はスキップ
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if err := checkAndSetProfile(cmd); err != nil {
			return err
		}

		var err error
		target, err = config.LoadTarget()
		if err != nil {
			return &deploy.ConfigurationError{Err: err}
		}
		if region == "" {
			region = target.Region
		}
		awsCtx = aws.Context{Profile: profile, Region: region}
		return nil
	}
}

// checkAndSetProfile はデプロイ主体となるプロファイルの確認と設定を行う
func checkAndSetProfile(cmd *cobra.Command) error {
	// プロファイルがすでに指定されている場合は何もしない
	if profile != "" {
		return nil
	}
	// 環境変数からプロファイル取得を試みる
	envProfile := os.Getenv("AWS_PROFILE")
	if envProfile == "" {
		// 副作用が出る前に中断する
		cmd.SilenceUsage = true
		return &deploy.ConfigurationError{Missing: "AWS_PROFILE"}
	}
	profile = envProfile
	cmd.Println("🔍 環境変数 AWS_PROFILE の値 '" + profile + "' を使用します")
	return nil
}
