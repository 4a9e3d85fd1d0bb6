package download

import (
	"io"
	"net/http"
	"os"

	"interview-video-server/modules/common/apperr"
)

const maxRedirects = 10

// noRedirectClient - 리다이렉트를 직접 따라가기 위해 자동 처리 비활성화
var noRedirectClient = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

// File - URL을 destPath로 다운로드 (301/302 리다이렉트 따라감)
// 실패 시 부분 파일은 삭제하고 에러 반환
func File(url, destPath string) error {
	return downloadFile(url, destPath, 0)
}

func downloadFile(url, destPath string, redirects int) error {
	if redirects > maxRedirects {
		return apperr.New(apperr.KindDownloadFailed, "too many redirects downloading %s", url)
	}

	resp, err := noRedirectClient.Get(url)
	if err != nil {
		return apperr.Wrap(apperr.KindDownloadFailed, err, "failed to download %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusMovedPermanently || resp.StatusCode == http.StatusFound {
		location := resp.Header.Get("Location")
		if location == "" {
			return apperr.New(apperr.KindDownloadFailed, "redirect without location from %s", url)
		}
		return downloadFile(location, destPath, redirects+1)
	}

	if resp.StatusCode != http.StatusOK {
		return apperr.New(apperr.KindDownloadFailed, "download failed: status %d", resp.StatusCode)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return apperr.Wrap(apperr.KindDownloadFailed, err, "failed to create %s", destPath)
	}

	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(destPath)
		return apperr.Wrap(apperr.KindDownloadFailed, err, "failed to write %s", destPath)
	}

	if err := file.Close(); err != nil {
		os.Remove(destPath)
		return apperr.Wrap(apperr.KindDownloadFailed, err, "failed to close %s", destPath)
	}

	return nil
}
