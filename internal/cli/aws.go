package cli

import (
	"context"
	"os"
	"os/exec"

	"blogctl/internal/aws"
)

// ExecuteAwsCommand はAWS CLIコマンドを実行する共通関数
//
// 子プロセスの標準入出力は親にそのまま接続するため、
// 進行状況は呼び出し元のターミナルにライブで流れる。
func ExecuteAwsCommand(ctx context.Context, awsCtx aws.Context, args []string) error {
	if awsCtx.Profile != "" {
		args = append(args, "--profile", awsCtx.Profile)
	}
	if awsCtx.Region != "" {
		args = append(args, "--region", awsCtx.Region)
	}

	cmd := exec.CommandContext(ctx, "aws", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// AwsCliAvailable はAWS CLIがPATH上に存在するかを返す
func AwsCliAvailable() bool {
	_, err := exec.LookPath("aws")
	return err == nil
}
