package sanity

import (
	"clinic-site/internal/pkg/cms_dto"
	"clinic-site/internal/pkg/constvars"
	"fmt"
	"strings"
)

// ImageURL resolves an image asset reference of the form image-<id>-<w>x<h>-<ext>
// to its CDN address. It returns "" for a missing or malformed reference.
func ImageURL(image *cms_dto.Image, projectID, dataset string) string {
	if image == nil {
		return ""
	}
	ref := image.Asset.Ref
	if !strings.HasPrefix(ref, constvars.SanityImageRefPrefix) {
		return ""
	}

	parts := strings.Split(strings.TrimPrefix(ref, constvars.SanityImageRefPrefix), "-")
	if len(parts) < 3 {
		return ""
	}
	ext := parts[len(parts)-1]
	dimensions := parts[len(parts)-2]
	id := strings.Join(parts[:len(parts)-2], "-")
	if id == "" || !strings.Contains(dimensions, "x") {
		return ""
	}

	return fmt.Sprintf(constvars.SanityImageCDNFormat, projectID, dataset, id, dimensions, ext) + "?auto=format"
}
