package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigFileError

	// Registry errors
	RegistryReadError
	RegistryInvalidError
	UnknownDatasetError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBRowCountError
	DBDropTableError

	// Dataset errors
	DownloadError
	DownloadStatusError
	DataFileNotFoundError
	DataFileReadError
	TableExistsError
	CreateTableError
	CopyRowsError
	LoadHistoryError

	// Child process errors
	ShellStartError
	DumpError
)
