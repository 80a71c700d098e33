package s3

import "time"

// Object はバケット内のオブジェクト情報を格納する構造体
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// TreeNode はツリー表示用のノードを表現する構造体
type TreeNode struct {
	Name     string
	IsDir    bool
	Children map[string]*TreeNode
	Object   *Object // ファイルの場合のみ設定
}
