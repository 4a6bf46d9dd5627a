package model

type Email = string

type Token = string
