package ignore

// VCSDirName is the version-control metadata directory, ignored at every level
const VCSDirName = ".git"

// IsVCSDir reports whether name is the version-control metadata directory name
func IsVCSDir(name string) bool {
	return name == VCSDirName
}
