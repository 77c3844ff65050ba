package cli

var ParseComponentsForTest = parseComponents
