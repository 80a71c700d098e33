package deploy_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"blogctl/internal/config"
	"blogctl/internal/service/deploy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodVersion = "hugo v0.128.2-ab7c6d8f+extended linux/amd64 BuildDate=2024-06-01T00:00:00Z"

type fakeBuildTool struct {
	calls      *[]string
	version    string
	versionErr error
	buildErr   error
	builds     int
}

func (f *fakeBuildTool) Version(ctx context.Context) (string, error) {
	*f.calls = append(*f.calls, "version")
	return f.version, f.versionErr
}

func (f *fakeBuildTool) Build(ctx context.Context, siteDir string) error {
	*f.calls = append(*f.calls, "build")
	f.builds++
	return f.buildErr
}

type fakeSyncTool struct {
	calls       *[]string
	unavailable bool
	syncErr     error
	syncs       int
	gotLocal    string
	gotDest     string
}

func (f *fakeSyncTool) Available() bool {
	return !f.unavailable
}

func (f *fakeSyncTool) Sync(ctx context.Context, localDir, destUri string) error {
	*f.calls = append(*f.calls, "sync")
	f.syncs++
	f.gotLocal = localDir
	f.gotDest = destUri
	return f.syncErr
}

type fakeProber struct {
	calls  *[]string
	denied bool
}

func (f *fakeProber) CanAccess(ctx context.Context, bucket string) bool {
	*f.calls = append(*f.calls, "probe")
	return !f.denied
}

type fakeCdn struct {
	calls    *[]string
	err      error
	requests int
	gotPaths []string
}

func (f *fakeCdn) Invalidate(ctx context.Context, distributionId string, paths []string) (string, error) {
	*f.calls = append(*f.calls, "invalidate")
	f.requests++
	f.gotPaths = paths
	if f.err != nil {
		return "", f.err
	}
	return "I2EXAMPLE", nil
}

type harness struct {
	deployer *deploy.Deployer
	hugo     *fakeBuildTool
	sync     *fakeSyncTool
	prober   *fakeProber
	cdn      *fakeCdn
	calls    []string
	out      bytes.Buffer
}

func newHarness(stdin string) *harness {
	h := &harness{}
	h.hugo = &fakeBuildTool{calls: &h.calls, version: goodVersion}
	h.sync = &fakeSyncTool{calls: &h.calls}
	h.prober = &fakeProber{calls: &h.calls}
	h.cdn = &fakeCdn{calls: &h.calls}
	h.deployer = &deploy.Deployer{
		Target: config.Target{
			SiteDir:        ".",
			OutputDir:      "public",
			Bucket:         "blog.example.com",
			DistributionId: "E2EXAMPLE123456",
		},
		Hugo:   h.hugo,
		Sync:   h.sync,
		Prober: h.prober,
		Cdn:    h.cdn,
		In:     strings.NewReader(stdin),
		Out:    &h.out,
	}
	return h
}

func TestRunHappyPath(t *testing.T) {
	h := newHarness("y\n")

	err := h.deployer.Run(context.Background(), deploy.Options{})
	require.NoError(t, err)

	// ステップが正しい順序で一度ずつ実行されること
	assert.Equal(t, []string{"version", "probe", "build", "sync", "invalidate"}, h.calls)
	assert.Equal(t, "public", h.sync.gotLocal)
	assert.Equal(t, "s3://blog.example.com/", h.sync.gotDest)
	assert.Equal(t, []string{"/*"}, h.cdn.gotPaths)
}

func TestRunSyncsBuildOutputUnderSiteDir(t *testing.T) {
	// サイトディレクトリを移した場合でも、同期対象はその中のビルド出力であること
	h := newHarness("y\n")
	h.deployer.Target.SiteDir = "/srv/blog"

	err := h.deployer.Run(context.Background(), deploy.Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/blog", "public"), h.sync.gotLocal)
}

func TestRunDefaultYes(t *testing.T) {
	// 空入力（Enterのみ）はYes扱い
	h := newHarness("\n")

	err := h.deployer.Run(context.Background(), deploy.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, h.hugo.builds)
}

func TestRunPreflightFailures(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(h *harness)
		wantErr any
	}{
		{
			name:    "hugoが実行できない",
			setup:   func(h *harness) { h.hugo.versionErr = errors.New("executable file not found") },
			wantErr: new(*deploy.ToolingError),
		},
		{
			name:    "hugoのバージョンが古い",
			setup:   func(h *harness) { h.hugo.version = "hugo v0.92.0 linux/amd64" },
			wantErr: new(*deploy.ToolingError),
		},
		{
			name:    "aws CLIが見つからない",
			setup:   func(h *harness) { h.sync.unavailable = true },
			wantErr: new(*deploy.ToolingError),
		},
		{
			name:    "バケットにアクセスできない",
			setup:   func(h *harness) { h.prober.denied = true },
			wantErr: new(*deploy.AccessError),
		},
		{
			name:    "デプロイ先が未設定",
			setup:   func(h *harness) { h.deployer.Target.Bucket = "" },
			wantErr: new(*deploy.ConfigurationError),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness("y\n")
			tc.setup(h)

			err := h.deployer.Run(context.Background(), deploy.Options{})
			require.Error(t, err)
			assert.ErrorAs(t, err, tc.wantErr)

			// 検証失敗時は一切の副作用を起こさないこと
			assert.Zero(t, h.hugo.builds)
			assert.Zero(t, h.sync.syncs)
			assert.Zero(t, h.cdn.requests)
		})
	}
}

func TestRunConfirmDeclined(t *testing.T) {
	for _, answer := range []string{"n\n", "no\n", "N\n", "nope\n"} {
		t.Run(strings.TrimSpace(answer), func(t *testing.T) {
			h := newHarness(answer)

			err := h.deployer.Run(context.Background(), deploy.Options{})
			require.NoError(t, err)

			// キャンセル後はビルド以降のステップが走らないこと
			assert.Zero(t, h.hugo.builds)
			assert.Zero(t, h.sync.syncs)
			assert.Zero(t, h.cdn.requests)
			assert.Contains(t, h.out.String(), "キャンセル")
		})
	}
}

func TestRunForceSkipsPrompt(t *testing.T) {
	// --force指定時は"n"が入力されていてもプロンプト自体を出さない
	h := newHarness("n\n")

	err := h.deployer.Run(context.Background(), deploy.Options{Force: true})
	require.NoError(t, err)
	assert.Equal(t, 1, h.hugo.builds)
	assert.NotContains(t, h.out.String(), "[Y/n]")
}

func TestRunBuildFailureStopsPipeline(t *testing.T) {
	h := newHarness("y\n")
	h.hugo.buildErr = errors.New("exit status 1")

	err := h.deployer.Run(context.Background(), deploy.Options{})
	var buildErr *deploy.BuildError
	require.ErrorAs(t, err, &buildErr)

	assert.Zero(t, h.sync.syncs)
	assert.Zero(t, h.cdn.requests)
}

func TestRunSyncFailureStopsInvalidation(t *testing.T) {
	h := newHarness("y\n")
	h.sync.syncErr = errors.New("exit status 2")

	err := h.deployer.Run(context.Background(), deploy.Options{})
	var syncErr *deploy.SyncError
	require.ErrorAs(t, err, &syncErr)

	assert.Zero(t, h.cdn.requests)
}

func TestRunInvalidationFailure(t *testing.T) {
	h := newHarness("y\n")
	h.cdn.err = errors.New("AccessDenied")

	err := h.deployer.Run(context.Background(), deploy.Options{})
	var invErr *deploy.InvalidationError
	require.ErrorAs(t, err, &invErr)

	// 同期はすでに完了しており、巻き戻されないこと
	assert.Equal(t, 1, h.sync.syncs)
}

func TestRunSkipBuild(t *testing.T) {
	h := newHarness("y\n")

	err := h.deployer.Run(context.Background(), deploy.Options{SkipBuild: true})
	require.NoError(t, err)

	assert.Zero(t, h.hugo.builds)
	assert.Equal(t, 1, h.sync.syncs)
	assert.Equal(t, 1, h.cdn.requests)
}
