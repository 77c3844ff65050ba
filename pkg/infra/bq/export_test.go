package bq

var IsNotFoundForTest = isNotFound
