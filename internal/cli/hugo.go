package cli

import (
	"context"
	"os"
	"os/exec"
)

// ExecuteHugoCommand はHugoコマンドを実行する共通関数
func ExecuteHugoCommand(ctx context.Context, dir string, args []string) error {
	cmd := exec.CommandContext(ctx, "hugo", args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// HugoVersion は `hugo version` の出力を取得する
func HugoVersion(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "hugo", "version")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}
