package main

// welcomeProgram prints the greeting. It goes through the VM like any other input.
const welcomeProgram = `+[--->++<]>+.++[->++++<]>+.+++++++.----
-----.++++++++++++.--.--------.--[--->+<]>-.---[->++++<
]>.-----.[--->+<]>-----.---[->++++<]>.------------.---.
--[--->+<]>-.[-->+++++<]>+.---[-->+++<]>.------------.+
++++++++.------.[++>---<]>--.+[->++<]>.---[----->+<]>-.
+++[->+++<]>++.++++++++.+++++.--------.-[--->+<]>--.+[-
>+++<]>+.++++++++.-[++>---<]>+.++++[->++<]>+.+[--->+<]>
.++++++.+++[->+++<]>.+++++++++++++.--.++.-------------.
[--->+<]>---.+++[->+++<]>.+++++++++++++.[--->+<]>-----.`
