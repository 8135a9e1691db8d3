package lazyrpn_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/lazyrpn"
)

func ExampleCalculator_Calculate() {
	c := lazyrpn.New()
	for _, s := range []string{"42+", "24-", "22+2-2*2/0-"} {
		n, err := c.Calculate(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(s, n)
	}

	// Output:
	// 42+ 6
	// 24- -2
	// 22+2-2*2/0- 2
}

func ExampleCalculator_DefineFunction() {
	c := lazyrpn.New()
	c.DefineFunction('?', lazyrpn.Cond)
	c.DefineFunction('P', func(a, b lazyrpn.Lazy) int {
		fmt.Println("forced")
		return a() + b()
	})

	n, _ := c.Calculate("042P?")
	fmt.Println(n)
	n, _ = c.Calculate("242P?")
	fmt.Println(n)

	err := c.DefineFunction('?', lazyrpn.Seq)
	fmt.Println(errors.Is(err, lazyrpn.ErrAlreadyDefined))

	// Output:
	// 0
	// forced
	// 6
	// true
}

func ExampleLoadLib() {
	c := lazyrpn.New()
	if err := lazyrpn.LoadLib(c, os.Stdout); err != nil {
		fmt.Println(err)
		return
	}
	n, _ := c.Calculate("22!42P$")
	fmt.Println()
	fmt.Println(n)

	// Output:
	// PPPPPPPPPPPPPPPPPPPPPP
	// 0
}

func ExampleCalculator_Parse() {
	c := lazyrpn.New()
	_, err := c.Parse("42")
	fmt.Println(err)
	_, err = c.Parse("02&")
	fmt.Println(err)

	// Output:
	// 3: syntax error (2 values left on stack)
	// 3: unknown operator at '&'
}
