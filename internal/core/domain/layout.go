package domain

const (
	// DefaultManifestName is the file name looked up when discovering manifests.
	DefaultManifestName = "reify.yaml"

	// Shell is the interpreter every entry command runs under.
	Shell = "bash"

	// ShellPreamble makes the shell trace statements and stop at the first failure.
	ShellPreamble = "set -xe"

	// FilesEnvVar exposes the newline-joined files of an entry to its command.
	FilesEnvVar = "files"

	// RequiredFilesEnvVar exposes the newline-joined required files of an entry to its command.
	RequiredFilesEnvVar = "required_files"

	// OutputTailLines is the number of output lines kept for failed entries when
	// output is not streamed.
	OutputTailLines = 10

	// HashBufferSize is the read buffer used while hashing file contents.
	HashBufferSize = 1024

	// FilePerm is the default permission for manifest files (rw-r--r--).
	FilePerm = 0o644
)
