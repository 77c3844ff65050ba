package gitrepo

var CommitDirectoryForTest = commitDirectory
