package file

import (
	domain "file-manager-api/internal/domain/file"
)

func ToResponseFile(fDomain *domain.FileRecord) File {
	return File{
		UUID:      fDomain.UUID,
		FileName:  fDomain.FileName,
		FileType:  string(fDomain.FileType),
		SizeBytes: fDomain.SizeBytes,
		FileURL:   fDomain.FileURL,
		CreatedAt: fDomain.CreatedAt.UTC(),
		UpdatedAt: fDomain.UpdatedAt.UTC(),
	}
}

func ToResponseFiles(fsDomain domain.FileRecords) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(f)
	}

	return fs
}
