package loader_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packsmith/internal/core/domain"
	"go.trai.ch/packsmith/internal/core/ports/mocks"
	"go.trai.ch/packsmith/internal/engine/loader"
	"go.uber.org/mock/gomock"
)

func TestInstallerURL(t *testing.T) {
	tests := []struct {
		name    string
		spec    domain.RuntimeSpec
		want    string
		wantErr error
	}{
		{
			name: "forge",
			spec: domain.RuntimeSpec{PlatformVersion: "1.20.1", Kind: domain.RuntimeForge, Version: "47.4.0"},
			want: "https://maven.minecraftforge.net/net/minecraftforge/forge/1.20.1-47.4.0/forge-1.20.1-47.4.0-installer.jar",
		},
		{
			name: "forge legacy platform",
			spec: domain.RuntimeSpec{PlatformVersion: "1.7.10", Kind: domain.RuntimeForge, Version: "10.13.4.1614"},
			want: "https://maven.minecraftforge.net/net/minecraftforge/forge/1.7.10-10.13.4.1614-1.7.10/forge-1.7.10-10.13.4.1614-1.7.10-installer.jar",
		},
		{
			name: "neoforge",
			spec: domain.RuntimeSpec{PlatformVersion: "1.20.1", Kind: domain.RuntimeNeoForge, Version: "1234567891.20.1x"},
			want: "https://maven.neoforged.net/releases/net/neoforged/neoforge/1.20.1.167/neoforge-1234567891.20.1x-installer.jar",
		},
		{
			name: "neoforge shortest accepted version",
			spec: domain.RuntimeSpec{PlatformVersion: "1.21.1", Kind: domain.RuntimeNeoForge, Version: "123456789x"},
			want: "https://maven.neoforged.net/releases/net/neoforged/neoforge/.167/neoforge-123456789x-installer.jar",
		},
		{
			name:    "neoforge version too short",
			spec:    domain.RuntimeSpec{PlatformVersion: "1.21.1", Kind: domain.RuntimeNeoForge, Version: "21.1.77"},
			wantErr: domain.ErrRuntimeFormat,
		},
		{
			name: "fabric has no installer",
			spec: domain.RuntimeSpec{PlatformVersion: "1.20.1", Kind: domain.RuntimeFabric, Version: "0.15.11"},
			want: "",
		},
		{
			name:    "unknown kind",
			spec:    domain.RuntimeSpec{Kind: domain.RuntimeKind(42)},
			wantErr: domain.ErrUnknownRuntime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loader.InstallerURL(tt.spec)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocator_Provision_Forge(t *testing.T) {
	ctrl := gomock.NewController(t)
	downloader := mocks.NewMockDownloader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	layout := domain.NewLayout(t.TempDir())

	spec := domain.RuntimeSpec{PlatformVersion: "1.20.1", Kind: domain.RuntimeForge, Version: "47.4.0"}
	downloader.EXPECT().FetchURL(gomock.Any(),
		"https://maven.minecraftforge.net/net/minecraftforge/forge/1.20.1-47.4.0/forge-1.20.1-47.4.0-installer.jar",
		filepath.Join(layout.LoaderDir(), "forge-47.4.0-1.20.1-server_installer.jar"),
	).Return(nil)

	require.NoError(t, loader.NewLocator(downloader, log).Provision(context.Background(), spec, layout))
	assert.DirExists(t, layout.LoaderDir())
}

func TestLocator_Provision_FabricDownloadsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	downloader := mocks.NewMockDownloader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), gomock.Any())
	layout := domain.NewLayout(t.TempDir())

	spec := domain.RuntimeSpec{PlatformVersion: "1.20.1", Kind: domain.RuntimeFabric, Version: "0.15.11"}
	require.NoError(t, loader.NewLocator(downloader, log).Provision(context.Background(), spec, layout))
	assert.NoDirExists(t, layout.LoaderDir())
}

func TestLocator_Provision_DownloadFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	downloader := mocks.NewMockDownloader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any(), gomock.Any()).Do(func(err error, _ ...any) {
		assert.ErrorIs(t, err, domain.ErrTransferFailed)
	})

	downloader.EXPECT().FetchURL(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Because(domain.ErrTransferFailed, errors.New("404")))

	spec := domain.RuntimeSpec{PlatformVersion: "1.20.1", Kind: domain.RuntimeForge, Version: "47.4.0"}
	err := loader.NewLocator(downloader, log).Provision(context.Background(), spec, domain.NewLayout(t.TempDir()))
	require.NoError(t, err)
}

func TestLocator_Provision_FormatErrorIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	downloader := mocks.NewMockDownloader(ctrl)
	log := mocks.NewMockLogger(ctrl)

	spec := domain.RuntimeSpec{PlatformVersion: "1.21.1", Kind: domain.RuntimeNeoForge, Version: "21.1"}
	err := loader.NewLocator(downloader, log).Provision(context.Background(), spec, domain.NewLayout(t.TempDir()))
	require.ErrorIs(t, err, domain.ErrRuntimeFormat)
}
