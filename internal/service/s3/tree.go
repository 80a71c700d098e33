package s3

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ListObjects はバケット内の全オブジェクト一覧を取得する
func ListObjects(ctx context.Context, s3Client *s3.Client, bucketName string) ([]Object, error) {
	var objects []Object

	paginator := s3.NewListObjectsV2Paginator(s3Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("オブジェクト一覧取得エラー: %w", err)
		}

		for _, obj := range page.Contents {
			objects = append(objects, Object{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	return objects, nil
}

// ShowBucketTree は公開中のサイトの中身をツリー形式で表示する
func ShowBucketTree(ctx context.Context, s3Client *s3.Client, bucketName string, showTime bool, w io.Writer) error {
	objects, err := ListObjects(ctx, s3Client, bucketName)
	if err != nil {
		return err
	}

	if len(objects) == 0 {
		fmt.Fprintf(w, "🔍 s3://%s には何もデプロイされていません\n", bucketName)
		return nil
	}

	tree := BuildTree(objects)

	fmt.Fprintf(w, "📁 s3://%s\n", bucketName)
	renderTree(w, tree, "", true, showTime)

	// 合計表示
	var total int64
	for _, obj := range objects {
		total += obj.Size
	}
	fmt.Fprintf(w, "\n合計: %d個のオブジェクト (%s)\n", len(objects), FormatSize(total))

	return nil
}

// BuildTree はオブジェクトのキー一覧からツリー構造を構築する
func BuildTree(objects []Object) *TreeNode {
	root := &TreeNode{
		Name:     "",
		IsDir:    true,
		Children: make(map[string]*TreeNode),
	}

	for _, obj := range objects {
		key := strings.TrimPrefix(obj.Key, "/")
		if key == "" {
			continue
		}

		parts := strings.Split(key, "/")
		current := root

		// ディレクトリ部分を処理
		for _, part := range parts[:len(parts)-1] {
			if part == "" {
				continue
			}
			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					IsDir:    true,
					Children: make(map[string]*TreeNode),
				}
			}
			current = current.Children[part]
		}

		// ファイル部分を処理
		fileName := parts[len(parts)-1]
		if fileName != "" {
			o := obj
			current.Children[fileName] = &TreeNode{
				Name:   fileName,
				IsDir:  false,
				Object: &o,
			}
		}
	}

	return root
}

// renderTree はツリー構造を表示する
func renderTree(w io.Writer, node *TreeNode, prefix string, isLast bool, showTime bool) {
	if node.Name != "" {
		connector := "├── "
		if isLast {
			connector = "└── "
		}

		if node.IsDir {
			fmt.Fprintf(w, "%s%s%s/\n", prefix, connector, node.Name)
		} else {
			sizeStr := FormatSize(node.Object.Size)
			if showTime {
				timeStr := node.Object.LastModified.Format("2006-01-02 15:04:05")
				fmt.Fprintf(w, "%s%s%s (%s) [%s]\n", prefix, connector, node.Name, sizeStr, timeStr)
			} else {
				fmt.Fprintf(w, "%s%s%s (%s)\n", prefix, connector, node.Name, sizeStr)
			}
		}
	}

	// ディレクトリを先、ファイルを後にそれぞれアルファベット順で表示
	var dirs, files []string
	for name, child := range node.Children {
		if child.IsDir {
			dirs = append(dirs, name)
		} else {
			files = append(files, name)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)
	allNames := append(dirs, files...)

	for i, name := range allNames {
		child := node.Children[name]
		isLastChild := i == len(allNames)-1

		var newPrefix string
		if node.Name == "" {
			// ルートノードの場合
			newPrefix = prefix
		} else if isLast {
			newPrefix = prefix + "    "
		} else {
			newPrefix = prefix + "│   "
		}

		renderTree(w, child, newPrefix, isLastChild, showTime)
	}
}

// FormatSize はバイト数を人間が読める形式でフォーマットする
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
