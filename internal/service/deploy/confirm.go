package deploy

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm はデプロイ先を提示してユーザーの確認を取る
//
// 空入力はYes扱い（デフォルトYes）。Yes以外の応答はすべてキャンセル。
func (d *Deployer) confirm() (bool, error) {
	fmt.Fprintln(d.Out, "\n📋 [2/5] デプロイ先:")
	fmt.Fprintf(d.Out, "   バケット: s3://%s\n", d.Target.Bucket)
	fmt.Fprintf(d.Out, "   ディストリビューション: %s\n", d.Target.DistributionId)
	fmt.Fprint(d.Out, "\nデプロイを実行しますか？ [Y/n]: ")

	reader := bufio.NewReader(d.In)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("入力読み取りエラー: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "" || response == "y" || response == "yes", nil
}
